package tracker

type RunRoot int

const (
	FixtureNormal RunRoot = iota
	FixtureNoWindows
	KronosNormal
)

// Roots lists every run root in report order.
var Roots = []RunRoot{FixtureNormal, FixtureNoWindows, KronosNormal}

// Label is the run type used in report rows and graph copy prefixes.
func (r RunRoot) Label() string {
	switch r {
	case FixtureNormal:
		return "FixtureNormal"
	case FixtureNoWindows:
		return "FixtureNoWindows"
	case KronosNormal:
		return "Kronos"
	default:
		return "Unknown"
	}
}

func (r RunRoot) String() string {
	if r == KronosNormal {
		return "KronosNormal"
	}
	return r.Label()
}

// RootPaths binds run roots to configured directories. Both fixture roots
// share the imager fixture images directory.
type RootPaths struct {
	Fixture string
	Kronos  string
}

func (p RootPaths) Path(r RunRoot) string {
	if r == KronosNormal {
		return p.Kronos
	}
	return p.Fixture
}
