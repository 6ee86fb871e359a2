// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package clustering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindPeriods(t *testing.T) {
	hours := map[int]int{1: 5, 2: 3, 3: 2, 10: 4, 11: 1, 15: 0}
	periods := FindPeriods(&Conf{MinDensity: 1, Epsilon: 1.5}, hours)
	assert.Equal(
		t,
		[]Period{
			{FirstHour: 1, LastHour: 3, Hits: 10},
			{FirstHour: 10, LastHour: 11, Hits: 5},
		},
		periods,
	)
}

func TestFindPeriodsEmpty(t *testing.T) {
	periods := FindPeriods(&Conf{MinDensity: 1, Epsilon: 1.5}, map[int]int{})
	assert.NotNil(t, periods)
	assert.Empty(t, periods)
}

func TestDistance(t *testing.T) {
	a := clusterableHour{hour: 3}
	b := clusterableHour{hour: 7}
	assert.Equal(t, 4.0, a.DistanceTo(b))
	assert.Equal(t, 4.0, b.DistanceTo(a))
	assert.Equal(t, "3", a.Name())
}

func TestConfValidate(t *testing.T) {
	assert.NoError(t, (&Conf{MinDensity: 1, Epsilon: 1.5}).Validate())
	assert.Error(t, (&Conf{MinDensity: 0, Epsilon: 1.5}).Validate())
	assert.Error(t, (&Conf{MinDensity: 1, Epsilon: 0}).Validate())
}
