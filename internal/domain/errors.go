package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrEmptyUpload     = errors.New("no se recibió ningún archivo")
	ErrUnsupportedFile = errors.New("tipo de archivo no soportado")
	ErrMalformedFile   = errors.New("archivo de ventas mal formado")
	ErrNoRecords       = errors.New("no hay registros de ventas")
)
