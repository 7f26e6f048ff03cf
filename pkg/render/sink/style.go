package sink

// Fixed drawing parameters shared by every sink, in points.
const (
	strokeWidth = 1.5
	fontSize    = 14.0
	footerSize  = 10.0
)
