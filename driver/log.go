package driver

// logger is the slice of the node logger the driver actually uses.
// ros.Node.Logger() satisfies it, and tests substitute a quiet one.
type logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Warn(v ...interface{})
	Warnf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}
