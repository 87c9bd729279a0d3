package ontouml

// GUFOOptions configures the transformation to gUFO.
type GUFOOptions struct {
	BaseIRI              string            `json:"baseIRI"`
	Format               string            `json:"format"`
	URIFormatBy          string            `json:"uriFormatBy"`
	CreateInverses       bool              `json:"createInverses"`
	CreateObjectProperty bool              `json:"createObjectProperty"`
	PreAnalysis          bool              `json:"preAnalysis"`
	PrefixPackages       bool              `json:"prefixPackages"`
	CustomElementMapping map[string]string `json:"customElementMapping"`
	CustomPackageMapping map[string]string `json:"customPackageMapping"`
}

// DefaultGUFOOptions returns the options the server documents as defaults.
func DefaultGUFOOptions() GUFOOptions {
	return GUFOOptions{
		BaseIRI:              "https://example.com",
		Format:               "Turtle",
		URIFormatBy:          "name",
		CreateObjectProperty: true,
	}
}

// DBOptions configures the transformation to a relational schema.
type DBOptions struct {
	MappingStrategy    string `json:"mappingStrategy"`
	TargetDBMS         string `json:"targetDBMS"`
	IsStandardizeNames bool   `json:"isStandardizeNames"`
}

// DefaultDBOptions returns one-table-per-kind mapping for a generic DBMS.
func DefaultDBOptions() DBOptions {
	return DBOptions{
		MappingStrategy:    "ONE_TABLE_PER_KIND",
		TargetDBMS:         "GENERIC_SCHEMA",
		IsStandardizeNames: true,
	}
}

// OBDAOptions configures the transformation to an OBDA mapping. The
// relational options are shared with [DBOptions].
type OBDAOptions struct {
	DBOptions
	BaseIRI              string `json:"baseIri"`
	IsGenerateSchema     bool   `json:"isGenerateSchema"`
	IsGenerateConnection bool   `json:"generateConnection"`
	HostName             string `json:"hostName"`
	DatabaseName         string `json:"databaseName"`
	UserConnection       string `json:"userConnection"`
	PasswordConnection   string `json:"passwordConnection"`
}

// DefaultOBDAOptions returns [DefaultDBOptions] with a placeholder base IRI.
func DefaultOBDAOptions() OBDAOptions {
	return OBDAOptions{
		DBOptions: DefaultDBOptions(),
		BaseIRI:   "https://example.com",
	}
}
