// Package common holds small helpers shared by the other packages.
package common
