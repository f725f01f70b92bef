package repository

func firstNonEmpty(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
