package repo

import "errors"

// Классы ошибок хранилища. Конкретная причина оборачивается через %w,
// вызывающий различает класс через errors.Is.
var (
	// ErrOpen — хранилище не удалось открыть/подготовить.
	ErrOpen = errors.New("store: open failed")
	// ErrRead — транзакция чтения всего набора завершилась с ошибкой.
	ErrRead = errors.New("store: read failed")
	// ErrWrite — транзакция полной перезаписи завершилась с ошибкой.
	ErrWrite = errors.New("store: write failed")
	// ErrDelete — точечное удаление завершилось с ошибкой.
	ErrDelete = errors.New("store: delete failed")
)
