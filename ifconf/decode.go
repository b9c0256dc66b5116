package ifconf

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ifsnap/ifsnap/errs"
)

// DecodeYAML parses a YAML desired-configuration document (spec.md
// §6's structured document format), the library the teacher's
// dependency graph carries for config decoding.
func DecodeYAML(data []byte) (NetConf, error) {
	var conf NetConf
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return NetConf{}, errs.ProtocolParsef("ifconf.decode_yaml", "%v", errors.Wrap(err, "yaml"))
	}
	return conf, nil
}

// DecodeJSON parses a JSON desired-configuration document. The
// document shape is identical to the YAML form, so the stdlib decoder
// needs no third-party help once the YAML side is grounded on
// gopkg.in/yaml.v3.
func DecodeJSON(data []byte) (NetConf, error) {
	var conf NetConf
	if err := json.Unmarshal(data, &conf); err != nil {
		return NetConf{}, errs.ProtocolParsef("ifconf.decode_json", "%v", errors.Wrap(err, "json"))
	}
	return conf, nil
}
