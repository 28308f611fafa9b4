package humanize

import (
	"time"

	"github.com/rs/zerolog"
)

const metadataStartedAt = "humanize.started_at"

// NewLogHook returns a Hook that logs every call on logger, at debug level
// on success and at error level when rendering fails.
func NewLogHook(logger zerolog.Logger) Hook {
	return HookFuncs{
		Before: func(ctx *HookContext) {
			ctx.SetMetadata(metadataStartedAt, time.Now())
		},
		After: func(ctx *HookContext) {
			event := logger.Debug()
			if ctx.Error != nil {
				event = logger.Error().Err(ctx.Error)
			}

			event = event.
				Float64("ms", ctx.Milliseconds).
				Str("language", ctx.Language).
				Int("pieces", len(ctx.Pieces))

			if started, ok := ctx.MetadataValue(metadataStartedAt); ok {
				if at, ok := started.(time.Time); ok {
					event = event.Dur("elapsed", time.Since(at))
				}
			}

			if ctx.Error != nil {
				event.Msg("humanize failed")
				return
			}
			event.Str("result", ctx.Result).Msg("humanized duration")
		},
	}
}
