package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with nasdeck",
		Content: topicQuickstart,
	},
	{
		Name:    "config",
		Title:   "Analysis File Reference",
		Summary: "analysis.yaml schema, fields, and defaults",
		Content: topicConfig,
	},
	{
		Name:    "subcases",
		Title:   "Subcases and Case Control",
		Summary: "Global case, subcase scopes, and ${VAR} expansion",
		Content: topicSubcases,
	},
	{
		Name:    "import",
		Title:   "Importing Decks",
		Summary: "Merging bulk data, sanitizing, and the block list",
		Content: topicImport,
	},
	{
		Name:    "build",
		Title:   "Build Model",
		Summary: "Step order, atomic imports, the manifest, and exit status",
		Content: topicBuild,
	},
}

const topicQuickstart = `Quick Start
===========

1. Create an example analysis file:

    nasdeck init

   This writes analysis.yaml in the current directory.

2. Point the imports at your model deck and edit the subcases,
   parameters, and solution sequence.

3. Preview the build without writing anything:

    nasdeck build analysis.yaml --dry-run

4. Build the deck:

    nasdeck build analysis.yaml -o flutter.bdf

   The deck is written atomically. A manifest describing the build is
   written next to it as flutter.bdf.manifest.json.

5. Inspect the result:

    nasdeck stats flutter.bdf

To merge one deck into another without an analysis file:

    nasdeck merge wing.bdf fuselage.bdf -o combined.bdf
`

const topicConfig = `Analysis File Reference
=======================

Top-level fields:

  name        Optional label recorded in the manifest.
  sol         Solution sequence number written as "SOL n". Required when
              subcases are defined. Must be >= 0.
  output      Default output path, relative to the analysis file.
  diags       List of diagnostic numbers. Accepted and recorded but never
              written to the deck.
  interface   Free-form value carried on the session. Not written.
  global      Global case control:
                global:
                  case_control: ["ECHO = NONE", "DISP = ALL"]
  params      Ordered map of PARAM name to value or list of values.
              Names are 1-8 alphanumeric characters starting with a letter.
                params:
                  VREF: 1000.0
                  LMODES: 20
                  KDAMP: [1]
  subcases    Map of positive integer id to subcase. See 'nasdeck docs
              subcases'.
  imports     List of decks to merge. See 'nasdeck docs import'.

Values are written in free field. Reals always carry a decimal point
(1000.0 becomes "1000.", 1e-12 becomes "1.E-12"). Booleans become YES
or NO.
`

const topicSubcases = `Subcases and Case Control
=========================

Each subcase is keyed by its id:

  subcases:
    1:
      spc: 1
      load: 10
      case_control:
        - SPC = ${SPC}
        - LOAD = ${LOAD}
        - METHOD = 1
    2:
      spc: 2
      mach: 0.8
      case_control: ["SPC = ${SPC}", "$ mach ${MACH}"]

Reserved fields: id, spc, load, case_control, file. Any other field is
an extra attribute, available for expansion under its upper-cased name.

A subcase can live in its own file, resolved against the analysis file:

  subcases:
    3:
      file: cases/gust.yaml

The file holds the same fields as an inline entry. An entry with file
set cannot have other fields, and the file cannot name another file.

Expansion:

  ${ID}     the subcase id
  ${SPC}    the spc field
  ${LOAD}   the load field
  ${NAME}   any extra attribute; built-ins win over extras

Only the ${NAME} form is expanded. A reference to an unknown name is
left as written, and so is every other '$', which starts an inline
comment in a deck:

  DISP(PLOT) = ALL $ stress output

Global case control statements have no subcase to draw variables from
and are written exactly as given.

Subcases are written in file order. A subcase with no
case_control entries still gets its own empty SUBCASE scope.
`

const topicImport = `Importing Decks
===============

  imports:
    - path: model/wing.bdf
    - path: model/loads.bdf
      stage: after
      block-list: [PARAM, ENDDATA]
    - path: model/raw.bdf
      sanitize: false

Fields:

  path        Deck to merge, relative to the analysis file. Required.
  sanitize    Drop record types named in block-list. Default true.
  block-list  Record types to drop when sanitizing. Defaults to:
                ENDDATA PARAM EIGR EIGRL CAERO1 CAERO2 PAERO1 PAERO2
                SPLINE1 SPLINE2
              An explicit empty list keeps everything.
  stage       "before" (default) or "after" synthesis.

Only bulk records are merged; the source executive and case control
sections are ignored. Every record keeps its type.

Leading comment lines ("$" in column 0) are peeled off each record and
kept as the record's comment. Peeling stops at the first line that is
not a comment. A record that is nothing but comments fails the import.

Imported PARAM records collide with the params section, which is why
PARAM is blocked by default.
`

const topicBuild = `Build Model
===========

A build runs these steps in order:

  1. import every "before" deck, in file order
  2. synthesize: SOL, case control, PARAM records, then validation
  3. import every "after" deck, in file order
  4. export the deck, ending with ENDDATA

Validation fails on records with no payload, PARAM records without a
name, duplicate PARAM names, and duplicate ids among GRID, element,
property, and material records.

Flags:

  -o, --output   Output path. Defaults to the analysis file's output
                 field, then to <analysis name>.bdf.
  --dry-run      Print the step plan and exit.
  --atomic       Make each import all-or-nothing. Without it, records
                 merged before a failure stay in the session.
  --verbose      Debug logging on stderr.

The manifest <output>.manifest.json records the session id, status
(completed, failed, or interrupted), record counts per type, per-import
results, and step timings. It is written on failure too.

A build interrupted with Ctrl-C stops before the next step and is
recorded as interrupted.
`
