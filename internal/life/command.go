package life

// CommandKind identifies a simulation command.
type CommandKind uint8

const (
	// Quit terminates the engine loop. Any commands still pending behind
	// it are discarded.
	Quit CommandKind = iota
	// TogglePlayback inverts the running flag.
	TogglePlayback
	// ToggleCell flips one cell between alive and dead. X and Y are
	// 1-based terminal coordinates.
	ToggleCell
)

// Command is an intent delivered by the input side. The engine is the only
// component that touches grid state; producers send commands, never
// mutations.
type Command struct {
	Kind CommandKind
	X, Y int
}

func QuitCommand() Command           { return Command{Kind: Quit} }
func TogglePlaybackCommand() Command { return Command{Kind: TogglePlayback} }
func ToggleCellCommand(x, y int) Command {
	return Command{Kind: ToggleCell, X: x, Y: y}
}
