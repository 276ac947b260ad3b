// Package goods defines the closed set of bulk goods a granary can hold and
// the display labels used when rendering stock.
//
// Kind is an int enumeration in the style of a status value: the zero value
// Unknown is never valid, every other constant has a stable upper-case code
// used on the wire and in configuration files. Labels are kept apart from the
// codes so that deployments can localize them without touching the domain.
package goods
