package riasec

// Dimension is one of the six RIASEC vocational-interest categories.
type Dimension string

const (
	Realistic     Dimension = "R"
	Investigative Dimension = "I"
	Artistic      Dimension = "A"
	Social        Dimension = "S"
	Enterprising  Dimension = "E"
	Conventional  Dimension = "C"
)

// CanonicalOrder is the fixed display order. It also acts as the
// deterministic tie-break when two dimensions hold equal scores.
var CanonicalOrder = [6]Dimension{
	Realistic,
	Investigative,
	Artistic,
	Social,
	Enterprising,
	Conventional,
}

func (d Dimension) Valid() bool {
	switch d {
	case Realistic, Investigative, Artistic, Social, Enterprising, Conventional:
		return true
	}
	return false
}

// Name returns the full category name for display.
func (d Dimension) Name() string {
	switch d {
	case Realistic:
		return "Realistic"
	case Investigative:
		return "Investigative"
	case Artistic:
		return "Artistic"
	case Social:
		return "Social"
	case Enterprising:
		return "Enterprising"
	case Conventional:
		return "Conventional"
	}
	return string(d)
}
