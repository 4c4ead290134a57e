// Package domain is the plant survivability engine: it scores how well a
// plant variety's climate tolerance fits each country's observed climate in a
// given year, and turns those scores into choropleth styles.
//
// # Input Tables
//
// Climate table (one row per country and year, semicolon-delimited in the
// dashboard's data files):
//
//	country;year;min_temp;max_temp;min_prec;max_prec
//	Brazil;2025;18.2;31.0;900;1800
//
// Plant table (one row per variety; the country column is a free-text,
// comma-separated list of origin places of mixed granularity):
//
//	species,variety,protein,min_temp,max_temp,min_prec,max_prec,country
//	Brassica oleracea,Kale,4.3,5,25,400,1200,"Germany, Italy"
//
// Plants are identified as "species - variety".
//
// Geometry features carry a display name in "NAME" or, failing that, "name".
//
// # Name Reconciliation
//
// The climate table and the geometry collection name countries differently
// ("United States of America" vs "United States", "Côte d'Ivoire" vs
// "Ivory Coast"). Both sides are mapped through a [Reconciler] onto a
// [CanonicalName] and joined on it. Names without a mapping fail closed with
// [ErrUnknownCountry]: the row is skipped and its geometry shown as no data.
//
// # Overlap Score
//
// For a plant tolerance range ref and an observed range obs:
//
//	disjoint                        → 0
//	obs entirely within ref         → 1
//	otherwise                       → |ref ∩ obs| / |ref|
//
// The denominator is always the plant's range: the score is the fraction of
// the tolerance band validated by the observed climate. A zero-width plant
// range returns [ErrDegenerateRange].
//
// # Survivability Score
//
//	round(wT·temperature + wP·precipitation, 3),  wT + wP = 1
//
// The weights come from an integer temperature percent (0–100);
// precipitation takes the complement. [ScoreAll] computes each distinct
// country once per request; styles, tooltips, exports and snapshots all read
// that one [ScoreTable].
//
// # Colours
//
// Scores map through a 256-entry lookup table over [0, 1]: index
// floor(score·256), clamped to 255. The default scale is ColorBrewer RdYlGn
// (red = 0, green = 1). Countries without data use [NoDataColor].
package domain
