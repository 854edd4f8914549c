// Package maprec holds the MapRecord data model shared by every covering
// and search package: one selected Cut per subject-graph node, plus the
// node's accumulated cost and depth.
//
// A Record is produced by AreaCover or DelayCover, may be mutated in
// place by CutResub, and is read by MapGenerator/MapEstimator and by the
// MCT/SA meta-searches driving repeated re-covers. It never interprets
// cut contents; it is purely a per-node slot table indexed by node id.
package maprec
