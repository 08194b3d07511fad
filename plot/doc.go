// SPDX-License-Identifier: EPL-2.0

// Package plot renders evaluation results as charts: ROC curves with the
// AUC and EER marked, and confusion-matrix heatmaps. All appearance
// knobs live in an explicit Style value passed per call; the package
// keeps no mutable state.
package plot
