/*
Package yayaml parses and writes YAYAML, a minimal indentation-based
configuration format. Every line holds a property name, optionally followed
by whitespace and a value; more deeply indented lines below it are its
children.

	# comment lines and blank lines are ignored
	name server
	port 8080
	listen
	  address localhost
	tag web
	tag api
	host primary
	  address db.internal

The example converts to the tree

	{"name": "server", "port": 8080, "listen": {"address": "localhost"},
	 "tag": ["web", "api"], "host": {"primary": {"address": "db.internal"}}}

Values made only of digits, '.' and '-' become numbers; everything else is a
string. A property that repeats becomes a sequence. A line with both a value
and children is a named map: its value names an entry inside the property,
and entries with different names merge into the same mapping.

Convert returns the tree as an *ast.Mapping. For the common task of reading
configuration into Go structs, Unmarshal and Decoder map the tree onto Go
values, and Marshal and Encoder write Go values back out:

	type Config struct {
		Name string   `yayaml:"name"`
		Port int      `yayaml:"port"`
		Tags []string `yayaml:"tag"`
	}

	var cfg Config
	if err := yayaml.Unmarshal(data, &cfg); err != nil {
		// handle error
	}

Deeply nested input is processed without recursion; use MaxDepth to bound
it for untrusted documents.
*/
package yayaml
