package rawinput

import "log/slog"

func (in KeyboardInput) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("makeCode", in.MakeCode),
		slog.String("vkey", in.VirtualKey.String()),
		slog.String("status", in.Status.String()),
		slog.Bool("e0", in.Extended0),
		slog.Bool("e1", in.Extended1),
		slog.Bool("altOrF10", in.AltOrF10),
	)
}

func (b ButtonState) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("status", b.Status.String()),
		slog.Bool("transition", b.Transition),
	)
}

func (in MouseInput) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("x", int(in.Movement.X)),
		slog.Int("y", int(in.Movement.Y)),
		slog.Bool("rel", in.MoveRelative),
		slog.Bool("abs", in.MoveAbsolute),
		slog.Bool("wheelX", in.WheelX),
		slog.Int("wheelDx", int(in.Wheel.X)),
		slog.Bool("wheelY", in.WheelY),
		slog.Int("wheelDy", int(in.Wheel.Y)),
		slog.Any("left", in.Left),
		slog.Any("right", in.Right),
		slog.Any("middle", in.Middle),
		slog.Any("forward", in.Forward),
		slog.Any("back", in.Back),
	)
}
