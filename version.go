package metonic

// Version is the current release of the metonic module.
const Version = "0.1.0"
