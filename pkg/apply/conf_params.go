package apply

import "github.com/go-ini/ini"

// confParams abstracts parameters loaded from a my.cnf-style defaults
// file. Will provide defaults when receiver is nil or a parameter is
// not defined. Like the stock MySQL clients, values are read from the
// [client] section first and a tool-specific [jet2my] section can
// override them.
type confParams struct {
	host, database, user string
	password             *string
	port                 int
}

func (c *confParams) GetHost() string {
	if c == nil || c.host == "" {
		return defaultHost
	}

	return c.host
}

func (c *confParams) GetDatabase() string {
	if c == nil || c.database == "" {
		return defaultDatabase
	}

	return c.database
}

func (c *confParams) GetUser() string {
	if c == nil || c.user == "" {
		return defaultUsername
	}

	return c.user
}

func (c *confParams) GetPassword() string {
	if c == nil || c.password == nil {
		return defaultPassword
	}

	return *c.password
}

func (c *confParams) GetPort() int {
	if c == nil || c.port == 0 {
		return defaultPort
	}

	return c.port
}

// newConfParams attempts to load a confParams struct from a path to an ini file.
func newConfParams(confFilePath string) (*confParams, error) {
	confParams := &confParams{}

	if confFilePath == "" {
		return confParams, nil
	}

	creds, err := ini.Load(confFilePath)
	if err != nil {
		return nil, err
	}

	for _, name := range []string{"client", "jet2my"} {
		if !creds.HasSection(name) {
			continue
		}
		section := creds.Section(name)
		confParams.overlay(section)
	}

	return confParams, nil
}

// overlay applies the non-empty keys of one section on top of whatever
// has been collected so far.
func (c *confParams) overlay(section *ini.Section) {
	if v := section.Key("host").String(); v != "" {
		c.host = v
	}
	if v := section.Key("database").String(); v != "" {
		c.database = v
	}
	if v := section.Key("user").String(); v != "" {
		c.user = v
	}
	if v := section.Key("port").MustInt(); v != 0 {
		c.port = v
	}
	if section.HasKey("password") {
		pw := section.Key("password").String()
		c.password = &pw
	}
}
