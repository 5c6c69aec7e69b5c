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

// Package board collects motherboard and firmware identity.
//
// Windows hosts query Win32_BaseBoard and Win32_BIOS through the management
// interface and keep every record. Linux hosts read board_vendor,
// board_name, board_serial and board_version from /sys/class/dmi/id; the
// first unreadable file (board_serial is usually root-only) replaces the
// whole category with "DMI information not available". Other platforms
// report "requires Windows or Linux".
package board
