package toyrsa

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
)

type logTopic string

const (
	dKeys   logTopic = "KEYS"
	dPrime  logTopic = "PRIME"
	dCodec  logTopic = "CODEC"
	dDump   logTopic = "DUMP"
	dAssert logTopic = "ASSERT"
)

// Debug output is off unless TOYRSA_DEBUG is set. TOYRSA_DUMP additionally
// prints full key material, so it has its own switch.
var debug, dump int32

func init() {
	SetDebug(os.Getenv("TOYRSA_DEBUG") != "", os.Getenv("TOYRSA_DUMP") != "")
}

// SetDebug overrides the debug and dump switches read from the environment.
func SetDebug(on, dumps bool) {
	atomic.StoreInt32(&debug, boolToInt32(on))
	atomic.StoreInt32(&dump, boolToInt32(dumps))
}

func IsDebug() bool {
	return atomic.LoadInt32(&debug) == 1
}

func IsDump() bool {
	return atomic.LoadInt32(&dump) == 1
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func DPrintf(format string, a ...interface{}) {
	log.SetFlags(log.Lmicroseconds)
	if IsDebug() {
		log.Printf(format, a...)
	}
}

func logf(topic logTopic, header string, format string, a ...interface{}) {
	DPrintf("%-6s %s "+format, append([]interface{}{topic, header}, a...)...)
}

func assertf(condition bool, header string, format string, a ...interface{}) {
	if IsDebug() && !condition {
		msg := fmt.Sprintf(format, a...)
		logf(dAssert, header, "%s", msg)
		panic(header + " " + msg)
	}
}
