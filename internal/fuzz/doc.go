// Package fuzztests houses Go fuzz harnesses for the formatting pipeline
// (source -> lexer -> parser -> format). They smoke test robustness against
// panics, hangs and lost source text on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через лексер, парсер и форматтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
