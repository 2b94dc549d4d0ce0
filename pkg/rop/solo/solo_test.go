package solo

type failure struct {
	message string
}
