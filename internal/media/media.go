// internal/media/media.go
//
// Media-type vocabulary for the rendering pipeline.
//
// Context
// -------
// Every renderer claims one or more MIME strings; the composer collects the
// claims into an immutable advertised list, and the HTTP adapter matches an
// incoming Accept header against that list.  Keeping the strings here, in
// one place, stops the "application/x-yaml" vs "text/yaml" spelling drift
// that otherwise creeps into handlers.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.
package media

// Canonical media types.  YAML and MessagePack each carry their historical
// aliases; a renderer claims the whole family.
const (
	JSON = "application/json"

	YAML      = "application/yaml"
	YAMLX     = "application/x-yaml"
	YAMLText  = "text/yaml"
	YAMLTextX = "text/x-yaml"

	MsgPack  = "application/msgpack"
	MsgPackX = "application/x-msgpack"

	EDN = "application/edn"

	HAL = "application/hal+json"
	CJ  = "application/vnd.collection+json"
)

// YAMLFamily lists every MIME string the YAML renderer answers to.
var YAMLFamily = []string{YAML, YAMLX, YAMLText, YAMLTextX}

// MsgPackFamily lists the MessagePack aliases.
var MsgPackFamily = []string{MsgPack, MsgPackX}
