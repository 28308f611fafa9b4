package humanize

// Hook observes Humanize calls. BeforeHumanize may adjust the duration and
// the language; AfterHumanize may replace the result or the error.
type Hook interface {
	BeforeHumanize(ctx *HookContext)
	AfterHumanize(ctx *HookContext)
}

type HookContext struct {
	Milliseconds float64
	Language     string
	Pieces       []Piece
	Result       string
	Error        error
	Metadata     map[string]any
}

func (ctx *HookContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

func (ctx *HookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

func (ctx *HookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// HookFuncs adapts plain functions to Hook. Nil fields are skipped.
type HookFuncs struct {
	Before func(ctx *HookContext)
	After  func(ctx *HookContext)
}

var _ Hook = HookFuncs{}

func (h HookFuncs) BeforeHumanize(ctx *HookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h HookFuncs) AfterHumanize(ctx *HookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}
