package web

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

func object(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}

	if len(required) > 0 {
		schema["required"] = required
	}

	return schema
}

func integer(minimum, maximum int) map[string]any {
	schema := map[string]any{"type": "integer", "minimum": minimum}
	if maximum > 0 {
		schema["maximum"] = maximum
	}

	return schema
}

var (
	stringType  = map[string]any{"type": "string"}
	booleanType = map[string]any{"type": "boolean"}
	nameType    = map[string]any{"type": "string", "minLength": 1}
)

func bestSellerSchema() map[string]any {
	return object(map[string]any{
		"id":          stringType,
		"name":        stringType,
		"hotkey":      stringType,
		"enabled":     booleanType,
		"hasLocation": booleanType,
		"delay":       integer(0, 1000),
	}, "id")
}

func runemakerProperties() map[string]any {
	return map[string]any{
		"isActive":        booleanType,
		"potionHotkey":    map[string]any{"type": []string{"string", "null"}},
		"potionRecorded":  booleanType,
		"spellHotkey":     stringType,
		"delay":           integer(100, 5000),
		"potionsPerCycle": integer(1, 10),
		"castsPerCycle":   integer(1, 10),
		"pauseHotkey":     stringType,
	}
}

func hyperGrabProperties() map[string]any {
	return map[string]any{
		"isActive": booleanType,
		"enabled":  booleanType,
	}
}

// withID declares a required "id" next to properties, for records replaced
// wholesale through the automation state.
func withID(properties map[string]any) map[string]any {
	properties["id"] = stringType

	return object(properties, "id")
}

func targetSchema() map[string]any {
	return object(map[string]any{
		"id":       stringType,
		"name":     nameType,
		"enabled":  booleanType,
		"priority": integer(1, 0),
	}, "id")
}

// Payload schemas used when strict payload checking is enabled. Every object
// rejects properties it does not declare.
var (
	createProfileSchema = mustCompile(object(map[string]any{
		"name":     nameType,
		"isActive": booleanType,
	}, "name"))

	profilePatchSchema = mustCompile(object(map[string]any{
		"name":     nameType,
		"isActive": booleanType,
	}))

	automationStatePatchSchema = mustCompile(object(map[string]any{
		"isGlobalActive": booleanType,
		"bestSellers":    map[string]any{"type": "array", "items": bestSellerSchema()},
		"runemaker":      withID(runemakerProperties()),
		"hyperGrab":      withID(hyperGrabProperties()),
		"targets":        map[string]any{"type": "array", "items": targetSchema()},
	}))

	bestSellerPatchSchema = mustCompile(object(map[string]any{
		"name":        stringType,
		"hotkey":      stringType,
		"enabled":     booleanType,
		"hasLocation": booleanType,
		"delay":       integer(0, 1000),
	}))

	runemakerPatchSchema = mustCompile(object(runemakerProperties()))

	hyperGrabPatchSchema = mustCompile(object(hyperGrabProperties()))

	createTargetSchema = mustCompile(object(map[string]any{
		"name": nameType,
	}, "name"))

	targetPatchSchema = mustCompile(object(map[string]any{
		"name":     nameType,
		"enabled":  booleanType,
		"priority": integer(1, 0),
	}))

	globalActiveSchema = mustCompile(object(map[string]any{
		"active": booleanType,
	}, "active"))
)

func mustCompile(schema map[string]any) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("invalid payload schema: %v", err))
	}

	return compiled
}

// validatePayload checks a raw request body against schema.
func validatePayload(schema *gojsonschema.Schema, body []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return err
	}

	if !result.Valid() {
		var errors []string
		for _, desc := range result.Errors() {
			errors = append(errors, desc.String())
		}

		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}
