package panel

type Action int

const (
	ActionNone Action = iota
	ActionFlatten
	ActionWaveWall
	ActionTogglePause
)
