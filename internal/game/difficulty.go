package game

type Difficulty struct {
	Name string
	Mode string
}

// ModeMap normalises characteristic names used by different decoders.
var ModeMap = map[string]string{
	"Standard":  "Standard",
	"OneSaber":  "OneSaber",
	"NoArrows":  "NoArrows",
	"90Degree":  "90Degree",
	"360Degree": "360Degree",
	"Lawless":   "Lawless",
	"Legacy":    "Legacy",
	"":          "Standard",
}

func NewDifficulty(name, mode string) Difficulty {
	if m, ok := ModeMap[mode]; ok {
		mode = m
	}
	return Difficulty{Name: name, Mode: mode}
}
