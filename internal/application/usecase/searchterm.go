package usecase

import (
	"strings"
	"unicode"
)

// normalizeTerm prepara el término de búsqueda: recorta espacios y descarta
// todo lo que no sea letra, dígito o espacio, para que el término sea seguro
// como tsquery y la clave de cache sea estable entre variantes de puntuación.
// Los diacríticos se conservan: los tsvectors almacenados lexan "José" como
// 'josé', así que quitarle la tilde al término haría perder esos matches.
func normalizeTerm(term string) string {
	term = strings.TrimSpace(term)
	if term == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(term))
	for _, r := range term {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
