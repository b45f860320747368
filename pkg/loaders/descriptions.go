package loaders

const csvDoc = `# csv

Comma-separated values. The first row is the header.

| param       | default | meaning                              |
|-------------|---------|--------------------------------------|
| delimiter   | ,       | single field separator character     |
| header      | true    | false numbers the columns from 0     |
`

const tsvDoc = `# tsv

Tab-separated values. Same params as **csv**, with a tab delimiter.
`

const jsonDoc = `# json

A JSON array of objects, or one object per line (JSON lines).
Nested objects and arrays are shown as compact JSON.
`

const yamlDoc = `# yaml

A YAML sequence of mappings. If the document is a mapping, set
` + "`table`" + ` to the key holding the rows; otherwise the first key
holding a sequence is used.
`

const tomlDoc = `# toml

An array of tables, e.g. ` + "`[[rows]]`" + `. Set ` + "`table`" + ` to pick one;
by default the first array (alphabetically) is used.
`

const xmlDoc = `# xml

Child elements of the root become rows. Set ` + "`path`" + ` (for example
` + "`/catalog/book`" + `) to choose the elements. Attributes and child
element text become columns.
`

const accessLogDoc = `# access_log

Web server access logs, parsed with an nginx ` + "`log_format`" + ` string
given by ` + "`format`" + ` (the default is the combined format). Lines that
do not match are skipped unless ` + "`strict=true`" + `.
`

const envDoc = `# env

The process environment as name/value rows, filtered by ` + "`prefix`" + `.
This loader can be previewed but not shown.
`
