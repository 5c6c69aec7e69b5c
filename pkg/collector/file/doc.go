// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package file reads small text attribute files for collectors.
//
// Firmware tables on Linux are exposed as one value per file under
// /sys/class/dmi/id. A Parser reads them either from the host filesystem or
// from any fs.FS, which lets tests substitute a testing/fstest.MapFS:
//
//	p := file.NewRootedParser("/sys/class/dmi/id")
//	vendor, err := p.GetValue("board_vendor")
//	if errors.Is(err, fs.ErrPermission) {
//	    // board_serial is typically root-only
//	}
//
// Files larger than the configured maximum or containing invalid UTF-8 are
// rejected.
package file
