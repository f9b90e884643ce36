package tracker

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	// Anchored at the end only: "Run_L0.35H0.95" matches, "L0.35H0.95_2021-11-01" does not.
	dataRunPattern = regexp.MustCompile(`L\d\.\d{2}H\d\.\d{2}$`)
	channelPattern = regexp.MustCompile(`^res_([0-2])exc\.txt$`)
)

const (
	noWindowsMarker = "NW"
	GraphMarker     = "SlitErr_exc.png"
	Channels        = 3
)

type MatchKind int

const (
	ExactName MatchKind = iota
	LooseContains
)

func (k MatchKind) String() string {
	if k == LooseContains {
		return "loose-contains"
	}
	return "exact-name"
}

// FolderRule decides whether a tracker directory under a run root belongs
// to a serial number.
type FolderRule struct {
	Kind   MatchKind
	Serial SerialNumber
}

func RuleFor(r RunRoot, sn SerialNumber) FolderRule {
	if r == FixtureNoWindows {
		return FolderRule{Kind: LooseContains, Serial: sn}
	}
	return FolderRule{Kind: ExactName, Serial: sn}
}

func (f FolderRule) Matches(name string) bool {
	switch f.Kind {
	case LooseContains:
		return strings.Contains(name, noWindowsMarker) && strings.Contains(name, string(f.Serial))
	default:
		return strings.TrimSuffix(name, filepath.Ext(name)) == f.Serial.Folder()
	}
}

func IsDataRunFolder(name string) bool { return dataRunPattern.MatchString(name) }

// ChannelIndex reports the channel of a res_<d>exc.txt file name.
func ChannelIndex(name string) (int, bool) {
	m := channelPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	return int(m[1][0] - '0'), true
}

func ChannelFile(ch int) string {
	return "res_" + strconv.Itoa(ch) + "exc.txt"
}
