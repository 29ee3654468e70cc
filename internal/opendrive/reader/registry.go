package reader

// supportedVersions lists every OpenDRIVE schema revision with both a
// bundled schema resource and a registered Adapter (§6: "For each
// OpenDRIVE schema version in {1.1 .. 1.7}").
var supportedVersions = []string{"1.1", "1.2", "1.3", "1.4", "1.5", "1.6", "1.7"}

var registry = func() map[string]Adapter {
	m := make(map[string]Adapter, len(supportedVersions))
	for _, v := range supportedVersions {
		m[v] = xmlAdapter{}
	}
	return m
}()

// hasSchema reports whether version has a bundled schema resource. Real
// schema-resource lookup is modeled as this static set rather than an
// embedded-resource lookup, since XSD validation itself is out of scope (§1).
func hasSchema(version string) bool {
	_, ok := registry[version]
	return ok
}
