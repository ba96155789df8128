package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"nixel/internal/diag"
	"nixel/internal/observ"
	"nixel/internal/parser"
	"nixel/internal/source"
	"nixel/internal/syntax"
)

// CheckResult содержит результат проверки одного файла
type CheckResult struct {
	Path   string        // Путь к файлу, как его передали
	FileID source.FileID // ID файла в FileSet
	Tree   *syntax.Tree  // Дерево; nil для попадания в кэш и ошибок I/O
	Bag    *diag.Bag     // Диагностики
	Cached bool          // Результат пришёл из дискового кэша
}

// CheckOptions настраивает пакетную проверку.
type CheckOptions struct {
	MaxDiagnostics int
	// Jobs — предел параллелизма; <=0 означает GOMAXPROCS.
	Jobs int
	// Cache — опциональный дисковый кэш; nil отключает кэширование.
	Cache *DiskCache
	// Observer получает событие по завершению каждого файла.
	Observer CheckObserver
}

// ListNixFiles возвращает отсортированный список всех *.nix файлов в директории
func ListNixFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".nix") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckDir проверяет все *.nix файлы в директории параллельно.
func CheckDir(ctx context.Context, dir string, opts CheckOptions) (*source.FileSet, []CheckResult, observ.Report, error) {
	files, err := ListNixFiles(dir)
	if err != nil {
		return nil, nil, observ.Report{}, err
	}
	return CheckMany(ctx, dir, files, opts)
}

// CheckMany парсит набор файлов параллельно, обслуживая неизменённые из кэша.
func CheckMany(ctx context.Context, baseDir string, paths []string, opts CheckOptions) (*source.FileSet, []CheckResult, observ.Report, error) {
	timer := observ.NewTimer()

	fileSet := source.NewFileSetWithBase(baseDir)
	if len(paths) == 0 {
		return fileSet, nil, timer.Report(), nil
	}

	// Предзагружаем все файлы последовательно: FileSet не рассчитан
	// на конкурентную запись.
	loadPhase := timer.Begin("load")
	fileIDs := make(map[string]source.FileID, len(paths))
	loadErrors := make(map[string]error, len(paths))
	for _, path := range paths {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}
	timer.End(loadPhase, "")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	maxErrors, err := safecast.Conv[uint](opts.MaxDiagnostics)
	if err != nil {
		return fileSet, nil, timer.Report(), err
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]CheckResult, len(paths))

	checkPhase := timer.Begin("check")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results[i] = checkOne(fileSet, path, fileIDs, loadErrors, maxErrors, opts)
			if opts.Observer != nil {
				opts.Observer(CheckEvent{
					Path:   path,
					Index:  i,
					Total:  len(paths),
					Cached: results[i].Cached,
					Errors: countErrors(results[i].Bag),
				})
			}
			return nil
		})
	}

	err = g.Wait()
	timer.End(checkPhase, "")
	return fileSet, results, timer.Report(), err
}

func checkOne(fileSet *source.FileSet, path string, fileIDs map[string]source.FileID, loadErrors map[string]error, maxErrors uint, opts CheckOptions) CheckResult {
	if loadErr, hadError := loadErrors[path]; hadError {
		bag := diag.NewBag(opts.MaxDiagnostics)
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  "failed to load file: " + loadErr.Error(),
			Primary:  source.Span{},
		})
		return CheckResult{Path: path, Bag: bag}
	}

	fileID := fileIDs[path]
	file := fileSet.Get(fileID)
	key := HashContent(file.Content)

	if opts.Cache != nil {
		var payload CheckPayload
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok {
			return CheckResult{
				Path:   path,
				FileID: fileID,
				Bag:    recordsToBag(payload.Diagnostics, fileID, opts.MaxDiagnostics),
				Cached: true,
			}
		}
	}

	bag := diag.NewBag(opts.MaxDiagnostics)
	result := parser.ParseFile(file, parser.Options{
		Reporter:  diag.NewDedupReporter(&diag.BagReporter{Bag: bag}),
		MaxErrors: maxErrors,
	})

	if opts.Cache != nil {
		// Промах кэша не ошибка проверки; ошибку записи тоже глотаем
		_ = opts.Cache.Put(key, &CheckPayload{
			Schema:      diskCacheSchemaVersion,
			Path:        path,
			ContentHash: key,
			Diagnostics: bagToRecords(bag),
		})
	}

	return CheckResult{
		Path:   path,
		FileID: fileID,
		Tree:   result.Tree,
		Bag:    bag,
	}
}

func countErrors(bag *diag.Bag) int {
	if bag == nil {
		return 0
	}
	n := 0
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			n++
		}
	}
	return n
}
