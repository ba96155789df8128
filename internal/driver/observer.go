package driver

// CheckEvent describes one finished file during a batch check.
type CheckEvent struct {
	Path   string
	Index  int
	Total  int
	Cached bool
	Errors int
}

// CheckObserver receives per-file events emitted during CheckMany.
// Вызывается из рабочих горутин; реализация сама отвечает за синхронизацию.
type CheckObserver func(CheckEvent)
