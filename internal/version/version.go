package version

// Version is the current release of the harvester
const Version = "0.2.0"
