// Package docs publica la especificación Swagger de la API en el registro de swag.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

// FilePath ruta del documento servido por la UI (relativa al directorio de trabajo).
const FilePath = "./docs/swagger.json"

//go:embed swagger.json
var docTemplate string

// SwaggerInfo metadatos de la especificación.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Propiedades API",
	Description:      "Pantallas de listado de la consola de administración de propiedades.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
