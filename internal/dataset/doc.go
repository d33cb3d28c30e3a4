// Package dataset parses the reduced US wildfire CSV and derives the
// analytical fields the dashboard aggregates over.
//
// # Data Source
//
// Records originate from the Fire Program Analysis fire-occurrence
// dataset (1.88 million US wildfires, 1992-2015), pre-reduced to the
// 1995-2015 window and a fixed eight-column subset. The reduction is
// reproducible with the `firedash reduce` command.
//
// # CSV Conventions
//
// Column set (header row required, order irrelevant):
//
//	OBJECTID            source row identifier
//	FIRE_YEAR           four-digit fire year
//	STAT_CAUSE_DESCR    cause description ("Lightning", "Arson", ...)
//	FIRE_SIZE           final fire size in acres
//	STATE               two-letter state or territory code
//	DATEGREG_DISCOVERY  Gregorian discovery date
//	DATEGREG_CONT       Gregorian containment date
//	FIRE_NAME           assigned incident name, often empty
//
// Dates appear in several layouts and are parsed leniently; values
// that match no known layout coerce to the zero time rather than
// failing the row. Rows with a malformed identifier, year, or size are
// skipped and counted.
//
// # Derived Fields
//
// Burned area:
//
//	SizeKM2 = FIRE_SIZE × 0.00404686, rounded to 4 decimals.
//
// Duration:
//
//	DurationDays = whole days from discovery to containment.
//	Nil when either date is missing, when negative, or when over 365
//	days. Multi-year durations in the source are data-entry artifacts,
//	not real incidents.
//
// Season (from the discovery month):
//
//	Dec-Feb Winter | Mar-May Spring | Jun-Aug Summer | Sep-Nov Fall
//
// Size class (NWCG letter classification of fire size in acres):
//
//	A ≤0.25 | B ≤9.9 | C ≤99.9 | D ≤299 | E ≤999 | F ≤4999 | G ≥5000
//
// State names come from an embedded code→name table covering the 50
// states, DC, and the territories present in the dataset; unknown
// codes fall back to the code itself.
package dataset
