package observability

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Instrument wraps a cell initializer so every attempt is counted, timed,
// and logged under name. The cell package itself stays free of metrics;
// this is the seam where initializers pick them up.
func Instrument[T any](name string, init func() (T, error)) func() (T, error) {
	return func() (T, error) {
		start := time.Now()
		val, err := init()
		elapsed := time.Since(start)

		RecordCellInit(name, err == nil, elapsed)
		event := log.Info()
		if err != nil {
			event = log.Error().Err(err)
		}
		event.
			Str("cell", name).
			Dur("duration", elapsed).
			Msg("cell_init")
		return val, err
	}
}
