package constants

const (
	Create = "CREATE"
	Rate   = "RATE"
)
