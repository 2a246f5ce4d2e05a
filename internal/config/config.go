package config

const (
	// Surface
	Length      = 600
	WindowTitle = "Mandelbrot"
	TPS         = 60

	// Initial viewport
	InitialOriginRe     = -0.5
	InitialOriginIm     = 0.0
	InitialExtent       = 2.5
	InitialMaxIteration = 250

	// Extent never grows past MaxExtentFactor*InitialExtent
	MaxExtentFactor = 4.0

	// Iteration budget
	IterationStep  = 25
	IterationFloor = 25

	// Navigation
	PanDivisor   = 25.0
	ZoomFactor   = 1.2
	ZoomInFactor = 1.5

	// Held keys repeat after KeyRepeatDelay ticks, then every KeyRepeatInterval ticks
	KeyRepeatDelay    = 30
	KeyRepeatInterval = 4

	// Overlay
	FontPath     = "data/font.ttf"
	FontSize     = 24
	OverlayX     = 10
	OverlayY     = 5
	OutlineWidth = 2

	// Rendering, 0 means GOMAXPROCS
	RenderWorkers = 0
)
