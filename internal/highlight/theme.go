package highlight

// Theme maps token kinds to CSS class lists.
type Theme map[Kind]string

// DefaultTheme mirrors the zinc/pink/emerald palette used across the site.
var DefaultTheme = Theme{
	Plain:      "text-zinc-800 dark:text-zinc-100",
	Comment:    "text-zinc-400 dark:text-zinc-500",
	Keyword:    "text-pink-600 dark:text-pink-400",
	TagBracket: "text-zinc-500 dark:text-zinc-400",
	TagName:    "text-emerald-600 dark:text-emerald-400",
	String:     "text-amber-600 dark:text-amber-300",
	AttrName:   "text-sky-600 dark:text-sky-300",
	AttrEquals: "text-zinc-500 dark:text-zinc-400",
	Brace:      "text-pink-600 dark:text-pink-400",
	Paren:      "text-zinc-500 dark:text-zinc-400",
}

// Class returns the classes for kind, falling back to the plain-text style.
func (t Theme) Class(kind Kind) string {
	if c, ok := t[kind]; ok {
		return c
	}
	return t[Plain]
}
