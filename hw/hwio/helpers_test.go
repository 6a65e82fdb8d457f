package hwio

import "nescore/emu/log"

var logNone log.ModLog
