package board

// Store keeps the history of rendered boards.
type Store interface {
	// Save assigns an id and timestamp when they are unset and persists the render.
	Save(r *Render) error
	Latest() (*Render, error)
	List(limit int) ([]RenderInfo, error)
	// Prune deletes all but the newest keep renders and reports how many were removed.
	Prune(keep int) (int, error)
}
