// Package api is generated from api/openapi.yaml; convert.go maps its types
// to and from the domain model.
package api

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --config=cfg.yaml ../../api/openapi.yaml
