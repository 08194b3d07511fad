// SPDX-License-Identifier: EPL-2.0

// Package eval computes binary-classification metrics for detector scores.
//
// The convention throughout is class 0 = human, class 1 = AI-generated.
// A score is the model's confidence that a clip belongs to class 1, and a
// decision threshold binarizes scores with score >= threshold meaning
// class 1.
//
// All functions are pure: given the same scores, labels and threshold they
// return the same result, and nothing is cached between calls. Scores may
// be passed either as a plain score vector or as two-column class
// probabilities; see Scores.
package eval
