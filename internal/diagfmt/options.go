package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
	// Context — сколько строк исходника вокруг проблемной печатать.
	// Отрицательное значение отключает контекст вовсе.
	Context int8
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	Max              int // обрезка вывода, не Bag
	IncludeNotes     bool
}

// TreeOpts configures syntax tree dumps.
type TreeOpts struct {
	// ShowTrivia включает строки тривии в текстовый дамп.
	ShowTrivia bool
	// ShowSpans печатает байтовые диапазоны узлов и токенов.
	ShowSpans bool
}
