// Package scaffold generates a new component directory from embedded
// template sets. It powers the root command: it creates the component
// directory, then renders each template of the chosen set in order,
// replacing the COMPONENT_NAME placeholder and formatting JavaScript output.
package scaffold
