// Package format applies line-break decisions to a whole document.
//
// Назначение: пройти все пары соседних токенов, спросить у linebreak решение,
// перестроить пробельные промежутки и проверить, что результат стабилен.
// Не делает: горизонтальных отступов внутри строки, переноса комментариев, IO.
// Зависимости: internal/linebreak, internal/parser, internal/syntax, internal/source.
package format
