package selection

// State holds the keyboard selection over the result list
type State struct {
	Index int // -1 means no active selection
}
