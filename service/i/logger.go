package i

// Logger is the leveled logger surface shared by all subsystems.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
