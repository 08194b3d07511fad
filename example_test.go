// SPDX-License-Identifier: EPL-2.0

package aimdkit_test

import (
	"fmt"
	"log"

	"github.com/sunjik/aimdkit"
	"github.com/sunjik/aimdkit/eval"
	"github.com/sunjik/aimdkit/features"
)

func Example_evaluateScores() {
	scores := eval.ScalarScores{0.9, 0.1, 0.8, 0.2}
	labels := []int{1, 0, 1, 0}

	summary, err := eval.Metrics(scores, labels, 0.5)
	if err != nil {
		log.Fatal(err)
	}
	auc, err := eval.AUC(scores, labels)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("accuracy: %.4f\n", summary.Accuracy)
	fmt.Printf("auc:      %.4f\n", auc)
	// Output:
	// accuracy: 1.0000
	// auc:      1.0000
}

// ExampleLoad shows the full pipeline from an audio file to a feature
// vector ready for a classifier.
func ExampleLoad() {
	clip, err := aimdkit.Load("song.wav", aimdkit.LoadOptions{SampleRate: 16000})
	if err != nil {
		log.Fatal(err)
	}

	segments, err := clip.Split(30.0)
	if err != nil {
		log.Fatal(err)
	}

	for _, segment := range segments {
		vec, err := features.ExtractAll(segment, clip.Rate, features.DefaultConfig())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(vec["spectral_centroid_mean"])
	}
}
