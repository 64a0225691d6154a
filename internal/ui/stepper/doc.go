// Package stepper renders step sequences in the terminal.
//
// Every presenter here is a controlled component. It draws the active index
// it was given and reports navigation through callbacks; moving the index
// is the caller's job. Stepper draws the whole sequence, MobileStepper a
// compact back/indicator/next row, ResponsiveStepper picks one of the two
// per render, and DesktopStepper adds a content slot and an action row.
package stepper
