package announcements

// Parameter structs for the announcement routines; the args order is the
// positional contract with the routine signatures.

// postParams feeds post_announcement(title, description, image).
type postParams struct {
	title       string
	description string
	image       []byte
}

func (p postParams) args() []any {
	return []any{p.title, p.description, p.image}
}

// editParams feeds edit_announcement(id, title, description, image).
type editParams struct {
	id          int64
	title       string
	description string
	image       []byte
}

func (p editParams) args() []any {
	return []any{p.id, p.title, p.description, p.image}
}
