package game

// Grade is a named accuracy band, Accuracy is the lower bound.
type Grade struct {
	Accuracy float64
	Name     string
}
