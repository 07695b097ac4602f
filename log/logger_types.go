package log

import (
	"io"
	"os"
	"sync"
)

const (
	timestampFormat = " 02/01/2006 15:04:05 "
	spacer          = " | "

	// Default header strings prepended to every staged log event
	infoHeader  = "[INFO]"
	warnHeader  = "[WARN]"
	debugHeader = "[DEBUG]"
	errorHeader = "[ERROR]"
)

var (
	// mu protects the sublogger registry and the shared output writer
	mu         sync.RWMutex
	output     io.Writer = os.Stdout
	subLoggers           = map[string]*SubLogger{}

	// Subloggers for each backtester subsystem
	Global     *SubLogger
	BackTester *SubLogger
	Setup      *SubLogger
	Strategy   *SubLogger
	Portfolio  *SubLogger
	Exchange   *SubLogger
	Statistics *SubLogger
	Data       *SubLogger
	ConfigMgr  *SubLogger
	DatabaseMg *SubLogger
)

// Levels flags each log level as enabled or disabled for a sublogger
type Levels struct {
	Info, Debug, Warn, Error bool
}

// SubLogger defines a sectioned sub logger to allow the sharpening of
// output per backtester subsystem
type SubLogger struct {
	name   string
	levels Levels
}

func init() {
	Global = registerNewSubLogger("LOG")
	BackTester = registerNewSubLogger("BACKTESTER")
	Setup = registerNewSubLogger("SETUP")
	Strategy = registerNewSubLogger("STRATEGY")
	Portfolio = registerNewSubLogger("PORTFOLIO")
	Exchange = registerNewSubLogger("EXCHANGE")
	Statistics = registerNewSubLogger("STATISTICS")
	Data = registerNewSubLogger("DATA")
	ConfigMgr = registerNewSubLogger("CONFIG")
	DatabaseMg = registerNewSubLogger("DATABASE")
}
