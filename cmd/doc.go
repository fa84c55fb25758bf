// Package cmd contains command-line utilities for training and evaluating opinion classifiers. It also contains
// supporting code shared by these utilities, such as constructing solutions from experiment options.
package cmd
