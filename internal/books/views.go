package books

import "github.com/mesh-intelligence/bookshelf/pkg/types"

// View is the data the renderer consumes: both shelves in collection order.
type View struct {
	Unread types.Collection `json:"unread"`
	Read   types.Collection `json:"read"`
}

// UnreadView returns the books not yet read, in order.
func UnreadView(c types.Collection) types.Collection {
	return shelf(c, false)
}

// ReadView returns the books already read, in order.
func ReadView(c types.Collection) types.Collection {
	return shelf(c, true)
}

// Shelves splits c into both views in one pass.
func Shelves(c types.Collection) View {
	v := View{Unread: types.Collection{}, Read: types.Collection{}}
	for _, b := range c {
		if b.IsComplete {
			v.Read = append(v.Read, b)
		} else {
			v.Unread = append(v.Unread, b)
		}
	}
	return v
}

func shelf(c types.Collection, complete bool) types.Collection {
	out := types.Collection{}
	for _, b := range c {
		if b.IsComplete == complete {
			out = append(out, b)
		}
	}
	return out
}
