package cart

// Registry hands out one cart per chat. Like the engines themselves it is
// only touched from the update loop.
type Registry struct {
	carts map[int64]*Engine
}

func NewRegistry() *Registry {
	return &Registry{carts: make(map[int64]*Engine)}
}

func (r *Registry) Get(chatID int64) *Engine {
	e, ok := r.carts[chatID]
	if !ok {
		e = New()
		r.carts[chatID] = e
	}
	return e
}

func (r *Registry) Drop(chatID int64) {
	delete(r.carts, chatID)
}
